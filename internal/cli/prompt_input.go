package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// confirmed asks message on the command's streams unless yes is already set.
func confirmed(cmd *cobra.Command, yes bool, message string) bool {
	if yes {
		return true
	}
	return promptYesNoIO(cmd.InOrStdin(), cmd.OutOrStdout(), message)
}

// promptYesNoIO prints message and reports whether the answer was y or yes.
// Anything else, including an empty line or a read error, means no.
func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	return text == "y" || text == "yes"
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
