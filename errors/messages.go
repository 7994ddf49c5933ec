package errors

// curated error message templates, grouped by the component that raises
// them. each is intended to be used with Errorf.
const (
	// cartridge loading
	CartridgeLoaderError = "cartridge loading error: %v"
	CartridgeFileError    = "cartridge error: %v"
	CartridgeEjected      = "cartridge error: no cartridge attached"
	CartridgeUnsupported  = "cartridge error: unsupported image size (%d bytes)"

	// cpu
	UnimplementedInstruction = "cpu error: unimplemented instruction (%#02x) at (%#04x)"

	// memory / bus
	UnrecognisedAddress = "memory error: unrecognised address (%#04x)"

	// preferences
	Prefs         = "prefs: %v"
	PrefsNoFile   = "prefs: no file (%s)"
	PrefsNotValid = "prefs: not a valid prefs file (%s)"
)
