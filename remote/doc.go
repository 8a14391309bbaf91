// Package remote provides a high-level API for driving a LEGO RCX brick.
//
// # Overview
//
// A Sender turns catalog actions into frames and writes them to a transport:
//   - Encoding commands with its own toggle bit
//   - Checking each frame before it goes out
//   - Pausing after each frame so the brick can keep up
//   - Reporting every written frame to an optional viewer
//
// # Basic Usage
//
//	// User provides the transport (io.Writer), e.g. a serial IR tower
//	port, err := serial.Open(serial.DefaultConfig("/dev/ttyUSB0"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	s := remote.New(port)
//	if err := s.Beep(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	_ = s.MotorOn(ctx, 0)
//	_ = s.Do(ctx, "stop-all")
//
// # Configuration Options
//
//	s := remote.New(port,
//	    remote.WithCommandDelay(150*time.Millisecond),
//	    remote.WithLogger(myLogger),
//	    remote.WithSentCallback(viewer),
//	)
//
// # Error Handling
//
// Transport failures are returned as *WriteError wrapping the transport
// error; nothing is retried. Catalog errors such as
// protocol.ErrInvalidMotorIndex are returned before anything is encoded, so
// the toggle bit is untouched.
//
// # Transport Independence
//
// This package does NOT implement the transport. Any io.Writer works:
// a serial port, a TCP bridge, a bytes.Buffer in tests.
package remote
