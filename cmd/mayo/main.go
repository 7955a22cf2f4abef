// Command mayo is a reference CLI for the MAYO signature scheme:
// keygen/sign/verify over hex-on-stdout, raw-bytes-on-file key, message,
// and signature artifacts. The cryptographic core itself lives in
// package mayo; this command only handles argument parsing and file I/O.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"mayo-go/mayo"
)

const stdMarker = "-"

func main() {
	logger := log.New(os.Stderr, "mayo: ", 0)

	if len(os.Args) < 2 {
		logger.Println("usage: mayo <keygen|sign|verify> [flags]")
		os.Exit(1)
	}

	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	variant := fs.String("variant", "mayo1", "MAYO variant: mayo1 or mayo2")
	skPath := fs.String("sk", stdMarker, "secret key file, or - for stdin/stdout")
	pkPath := fs.String("pk", stdMarker, "public key file, or - for stdin/stdout")
	inPath := fs.String("in", stdMarker, "message file, or - for stdin")
	sigPath := fs.String("sig", stdMarker, "signature file, or - for stdin/stdout")
	_ = fs.Parse(os.Args[2:])

	var err error
	switch cmd {
	case "keygen":
		err = runKeygen(*variant, *pkPath, *skPath)
	case "sign":
		err = runSign(*variant, *skPath, *inPath, *sigPath)
	case "verify":
		err = runVerify(*variant, *pkPath, *inPath, *sigPath)
	default:
		logger.Printf("unknown command %q\n", cmd)
		os.Exit(1)
	}

	if err == nil {
		os.Exit(0)
	}
	if errors.Is(err, errVerificationFailed) {
		logger.Println("Verification FAILED")
		os.Exit(2)
	}
	logger.Println(err)
	os.Exit(1)
}

var errVerificationFailed = errors.New("verification failed")

func runKeygen(variant, pkPath, skPath string) error {
	cpk, csk, err := mayo.Keypair(variant)
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}
	if err := writeArtifact(pkPath, cpk); err != nil {
		return fmt.Errorf("keygen: writing public key: %w", err)
	}
	if err := writeArtifact(skPath, csk); err != nil {
		return fmt.Errorf("keygen: writing secret key: %w", err)
	}
	return nil
}

func runSign(variant, skPath, inPath, sigPath string) error {
	csk, err := readArtifact(skPath)
	if err != nil {
		return fmt.Errorf("sign: reading secret key: %w", err)
	}
	msg, err := readArtifact(inPath)
	if err != nil {
		return fmt.Errorf("sign: reading message: %w", err)
	}
	sig, err := mayo.SignMessage(variant, csk, msg)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	if err := writeArtifact(sigPath, sig); err != nil {
		return fmt.Errorf("sign: writing signature: %w", err)
	}
	return nil
}

func runVerify(variant, pkPath, inPath, sigPath string) error {
	cpk, err := readArtifact(pkPath)
	if err != nil {
		return fmt.Errorf("verify: reading public key: %w", err)
	}
	msg, err := readArtifact(inPath)
	if err != nil {
		return fmt.Errorf("verify: reading message: %w", err)
	}
	sig, err := readArtifact(sigPath)
	if err != nil {
		return fmt.Errorf("verify: reading signature: %w", err)
	}

	signedMessage := append(append([]byte{}, sig...), msg...)
	_, ok, err := mayo.Open(variant, cpk, signedMessage)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !ok {
		return errVerificationFailed
	}
	return nil
}

// readArtifact reads raw bytes from a file, or hex-decoded bytes from
// stdin when path is "-".
func readArtifact(path string) ([]byte, error) {
	if path == stdMarker {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		decoded, err := hex.DecodeString(string(bytesTrimSpace(raw)))
		if err != nil {
			return nil, fmt.Errorf("decoding hex from stdin: %w", err)
		}
		return decoded, nil
	}
	return os.ReadFile(path)
}

// writeArtifact writes raw bytes to a file, or hex-encoded bytes to
// stdout when path is "-".
func writeArtifact(path string, data []byte) error {
	if path == stdMarker {
		_, err := fmt.Fprintln(os.Stdout, hex.EncodeToString(data))
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func bytesTrimSpace(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
