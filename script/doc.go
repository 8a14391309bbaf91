// Package script parses and runs RCX command scripts.
//
// A script is a text file with one catalog action per line, letting a
// sequence of commands be replayed against a brick:
//
//	# drive forward for a second, then beep
//	motor-on 0
//	motor-on 2
//	wait 1s
//	stop-all
//	beep
//
// Lines are split with shell quoting rules; '#' starts a comment. Every
// action is resolved against the protocol catalog while parsing, so an
// unknown action or an out-of-range motor fails before anything is sent.
//
// # Usage
//
//	sc, err := script.Parse("drive.rcx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sc.Run(ctx, remote.New(port)); err != nil {
//	    log.Fatal(err)
//	}
package script
