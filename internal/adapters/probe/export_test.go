package probe

// NewPingerWithCommand creates a Pinger that runs command followed by the host.
func NewPingerWithCommand(command ...string) *Pinger {
	return &Pinger{command: command}
}
