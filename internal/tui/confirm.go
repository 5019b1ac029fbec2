// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a styled yes/no question and reads the answer from r.
// Unrecognized input re-asks; EOF before an answer is an error.
func Confirm(r io.Reader, w io.Writer, question string) (bool, error) {
	scanner := bufio.NewScanner(r)

	for {
		fmt.Fprintf(w, "%s %s ", question, SubtitleStyle.Render("(y/n):"))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("failed to read answer: %w", err)
			}
			return false, io.ErrUnexpectedEOF
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
