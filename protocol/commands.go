package protocol

import (
	"fmt"
	"sort"
)

// Action names understood by Lookup.
const (
	ActionPing     = "ping"
	ActionStopAll  = "stop-all"
	ActionBeep     = "beep"
	ActionMotorOn  = "motor-on"
	ActionMotorOff = "motor-off"
)

// Ping builds the Ping command.
//
// Wire parameters: none
func Ping() Command {
	return NewCommand(byte(OpPing))
}

// StopAll builds the Stop All command, halting every task and motor.
//
// Wire parameters: none
func StopAll() Command {
	return NewCommand(byte(OpStopAll))
}

// Beep builds a Play Sound command for the beep system sound.
//
// Wire parameters:
//
//	[SOUND=0x01]
func Beep() Command {
	return NewCommand(byte(OpPlaySound), SoundBeep)
}

// MotorOn builds a Set Motor command that switches motor m on.
//
// Wire parameters:
//
//	[0x80 | 1<<m]
func MotorOn(m int) (Command, error) {
	return setMotor(MotorOnFlag, m)
}

// MotorOff builds a Set Motor command that switches motor m off.
//
// Wire parameters:
//
//	[0x40 | 1<<m]
func MotorOff(m int) (Command, error) {
	return setMotor(MotorOffFlag, m)
}

func setMotor(flag byte, m int) (Command, error) {
	if m < 0 || m > MaxMotorIndex {
		return Command{}, &MotorIndexError{Index: m}
	}
	return NewCommand(byte(OpSetMotor), flag|byte(1)<<m), nil
}

// actionDef describes a named catalog action.
type actionDef struct {
	args  int
	build func(args []int) (Command, error)
}

var actions = map[string]actionDef{
	ActionPing:     {build: noArgs(Ping)},
	ActionStopAll:  {build: noArgs(StopAll)},
	ActionBeep:     {build: noArgs(Beep)},
	ActionMotorOn:  {args: 1, build: motorArg(MotorOn)},
	ActionMotorOff: {args: 1, build: motorArg(MotorOff)},
}

func noArgs(fn func() Command) func([]int) (Command, error) {
	return func([]int) (Command, error) { return fn(), nil }
}

func motorArg(fn func(int) (Command, error)) func([]int) (Command, error) {
	return func(args []int) (Command, error) { return fn(args[0]) }
}

// Lookup resolves a named action and its integer arguments to a Command.
//
// Example:
//
//	cmd, err := protocol.Lookup("motor-on", 1)
func Lookup(action string, args ...int) (Command, error) {
	def, ok := actions[action]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if len(args) != def.args {
		return Command{}, fmt.Errorf("%s: %w: got %d, want %d", action, ErrActionArgs, len(args), def.args)
	}
	return def.build(args)
}

// ActionArgs returns the number of arguments a named action takes.
func ActionArgs(action string) (int, bool) {
	def, ok := actions[action]
	return def.args, ok
}

// Actions returns the catalog action names in sorted order.
func Actions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParamCount returns the number of parameters a catalog opcode carries.
func ParamCount(op Opcode) (int, bool) {
	switch op {
	case OpPing, OpStopAll:
		return 0, true
	case OpPlaySound, OpSetMotor:
		return 1, true
	}
	return 0, false
}
