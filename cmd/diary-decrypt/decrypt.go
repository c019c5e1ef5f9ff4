package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pkms-go/diary-keeper/internal/container"
	"github.com/pkms-go/diary-keeper/internal/crypto"
)

var errOutputExists = errors.New("output file already exists")

type decryptTarget struct {
	// output overrides the default media destination, "-" means stdout.
	output string
	force  bool
	stdout io.Writer
}

type decryptResult struct {
	extension string
	size      int
	// writtenTo is the media output path, empty when printed to stdout.
	writtenTo string
}

// decryptFile opens the container at path, decrypts it with the key
// derived from password and delivers the plaintext to target.
func decryptFile(path, password string, target decryptTarget) (decryptResult, error) {
	header, body, err := container.ReadFile(path)
	if err != nil {
		return decryptResult{}, err
	}

	key := crypto.DeriveKey(password)
	defer crypto.Wipe(key)

	plaintext, err := crypto.NewCipher().Decrypt(key, header.Nonce, body, header.Tag)
	if err != nil {
		return decryptResult{}, err
	}
	defer crypto.Wipe(plaintext)

	res := decryptResult{extension: header.Extension, size: len(plaintext)}

	dest := target.output
	if dest == "" && header.Extension != "" {
		dest = path + "." + header.Extension
	}

	if dest == "" || dest == "-" {
		if _, err = target.stdout.Write(plaintext); err != nil {
			return res, fmt.Errorf("write plaintext: %w", err)
		}
		return res, nil
	}

	if err = writeOutput(dest, plaintext, target.force); err != nil {
		return res, err
	}
	res.writtenTo = dest
	return res, nil
}

func writeOutput(dest string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(dest, flags, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s (use --force to overwrite)", errOutputExists, dest)
		}
		return fmt.Errorf("create output: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(dest)
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}

// describe turns err into a message for the terminal.
func describe(err error) string {
	switch {
	case errors.Is(err, crypto.ErrIntegrity):
		return "wrong password, or the file was modified"
	case errors.Is(err, container.ErrInvalidContainer):
		return "not a diary container: " + err.Error()
	case errors.Is(err, fs.ErrNotExist):
		return "file not found: " + err.Error()
	default:
		return err.Error()
	}
}
