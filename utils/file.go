package utils

import (
	"bufio"
	"io"
)

func IterLines(r io.Reader, iter func(line string) error) error {
	return iterScanner(r, bufio.ScanLines, iter)
}

// IterWords calls iter for every whitespace separated token of r.
func IterWords(r io.Reader, iter func(word string) error) error {
	return iterScanner(r, bufio.ScanWords, iter)
}

func iterScanner(r io.Reader, split bufio.SplitFunc, iter func(token string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(split)

	for scanner.Scan() {
		err := iter(scanner.Text())
		if err != nil {
			return err
		}
	}

	return scanner.Err()
}
