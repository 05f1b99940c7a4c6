package data

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const entryDoneWord = "done"

// ReadEntries collects name/score pairs interactively until the user
// types "done" for a name. Invalid scores prompt again for the same
// student rather than aborting the session. Prompts go to out, answers
// come from in.
func ReadEntries(in io.Reader, out io.Writer) *Roster {
	roster := NewRoster()
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintf(out, "Enter student name (or '%s' to finish): ", entryDoneWord)
		name, ok := readLine(scanner)
		if !ok || strings.EqualFold(name, entryDoneWord) {
			break
		}
		if name == "" {
			continue
		}

		for {
			fmt.Fprintf(out, "Enter score for %s (%d-%d): ", name, ScoreMin, ScoreMax)
			raw, ok := readLine(scanner)
			if !ok {
				return roster
			}

			score, err := strconv.Atoi(raw)
			if err != nil {
				fmt.Fprintln(out, "Invalid input, please enter a whole number.")
				continue
			}

			if err := roster.Set(name, score); err != nil {
				fmt.Fprintf(out, "Score must be between %d and %d, please re-enter.\n", ScoreMin, ScoreMax)
				continue
			}
			break
		}
	}

	return roster
}

func readLine(s *bufio.Scanner) (string, bool) {
	if !s.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.Text()), true
}
