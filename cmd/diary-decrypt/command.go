package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/models"
)

// readPassword is replaced in tests to avoid touching the terminal.
var readPassword = term.ReadPassword

var errEmptyPassword = errors.New("password must not be empty")

type options struct {
	output        string
	force         bool
	passwordStdin bool
	verbose       bool
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	build := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	cmd := &cobra.Command{
		Use:   "diary-decrypt <file.dat>",
		Short: "Decrypts a diary container file with the diary password",
		Long: "Decrypts a diary text or media container offline.\n" +
			"Text is printed to stdout, media is written to <file>.<ext> unless --output is set.",
		Version:       build.String(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newCLILogger(stderr, opts.verbose)

			password, err := promptPassword(stdin, stderr, opts.passwordStdin)
			if err != nil {
				return report(stderr, log, err)
			}

			res, err := decryptFile(args[0], password, decryptTarget{
				output: opts.output,
				force:  opts.force,
				stdout: stdout,
			})
			if err != nil {
				return report(stderr, log, err)
			}

			log.Debug().Str("input", args[0]).Str("extension", res.extension).Int("bytes", res.size).Msg("container decrypted")
			if res.writtenTo != "" {
				fmt.Fprintf(stderr, "✓ decrypted media written to %s\n", res.writtenTo)
			}
			return nil
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the plaintext to this path instead of the default")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing output file")
	cmd.Flags().BoolVar(&opts.passwordStdin, "password-stdin", false, "read the password from the first line of stdin")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug output on stderr")

	return cmd
}

// newCLILogger writes human-readable lines to w. Only warnings and errors
// are shown unless verbose is set.
func newCLILogger(w io.Writer, verbose bool) *logger.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &logger.Logger{Logger: zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()}
}

func report(stderr io.Writer, log *logger.Logger, err error) error {
	log.Debug().Err(err).Msg("decrypt failed")
	fmt.Fprintf(stderr, "✗ %s\n", describe(err))
	return err
}

// promptPassword reads the password from the terminal without echo, or from
// the first line of stdin when fromStdin is set.
func promptPassword(stdin io.Reader, stderr io.Writer, fromStdin bool) (string, error) {
	var password string

	if fromStdin {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	} else {
		fmt.Fprint(stderr, "Diary password: ")
		raw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		password = string(raw)
	}

	if password == "" {
		return "", errEmptyPassword
	}
	return password, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
