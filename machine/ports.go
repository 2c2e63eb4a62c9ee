package machine

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Port describes one candidate serial device. The Go ecosystem has no
// widely-used equivalent of the `serialport` crate's USB descriptor
// lookup (vendor/product IDs, manufacturer strings) without adding a
// cgo-dependent library the rest of this corpus never reaches for; Port
// is deliberately reduced to what a filesystem glob over the Unix serial
// device namespace can report, plus a best-effort manufacturer guess
// read back from the kernel's USB sysfs tree when one of these is in
// fact a USB-serial adapter.
type Port struct {
	Name         string
	Manufacturer string
}

// serialGlobs lists the device-name patterns a USB-to-serial adapter
// (the kind the Gemini PR protocol runs over) registers under on Linux
// and macOS.
var serialGlobs = []string{
	"/dev/ttyUSB*",
	"/dev/ttyACM*",
	"/dev/cu.usbserial*",
	"/dev/cu.usbmodem*",
}

// ListPorts enumerates candidate serial devices, mirroring
// SerialMachine::print_available_ports in spirit: every matching device
// path, annotated with whatever manufacturer string sysfs reports for
// it, if any.
func ListPorts() []Port {
	var ports []Port
	for _, pattern := range serialGlobs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			ports = append(ports, Port{Name: m, Manufacturer: manufacturerFor(m)})
		}
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].Name < ports[j].Name })
	return ports
}

// georgiManufacturer is the USB manufacturer string the Georgi steno
// keyboard identifies itself with.
const georgiManufacturer = "g Heavy Industries"

// FindGeorgiPort returns the first enumerated port whose manufacturer
// string matches the Georgi, or "" if none is found.
func FindGeorgiPort() string {
	for _, p := range ListPorts() {
		if p.Manufacturer == georgiManufacturer {
			return p.Name
		}
	}
	return ""
}

// manufacturerFor best-effort reads the USB manufacturer string sysfs
// associates with a /dev/ttyUSB*-style device, by following the device's
// sysfs symlink up to its USB interface ancestor. It returns "" on any
// failure, since not every serial device is USB-backed and sysfs layout
// is not guaranteed across kernels.
func manufacturerFor(devicePath string) string {
	name := filepath.Base(devicePath)
	sysDevice := filepath.Join("/sys/class/tty", name, "device")
	resolved, err := filepath.EvalSymlinks(sysDevice)
	if err != nil {
		return ""
	}

	dir := resolved
	for i := 0; i < 6; i++ {
		dir = filepath.Dir(dir)
		data, err := os.ReadFile(filepath.Join(dir, "manufacturer"))
		if err == nil {
			return strings.TrimSpace(string(data))
		}
		if dir == "/" || dir == "." {
			break
		}
	}
	return ""
}
