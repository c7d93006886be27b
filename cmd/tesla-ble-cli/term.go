package main

import "golang.org/x/term"

// termIsTerminal and termReadPassword wrap golang.org/x/term directly
// (rather than importing it all over main.go) so confirmPairingPIN reads
// like the teacher's pkg/cli getPassword: skip the masked prompt entirely
// when stdin isn't a TTY (piped input, CI) instead of hanging on a read
// that will never see a newline.
func termIsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func termReadPassword(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}
