package syncer

import (
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/eth-fabric/portsync/internal/errors"
	"github.com/eth-fabric/portsync/internal/patch"
	"github.com/eth-fabric/portsync/internal/system"
)

// Check is one preflight verdict for a target config.
type Check struct {
	// Name describes what was checked
	Name string

	// OK reports whether the check passed
	OK bool

	// Detail carries the current value when OK and the failure
	// reason otherwise
	Detail string
}

// AllOK reports whether every check passed.
func AllOK(checks []Check) bool {
	for _, c := range checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// CheckFabric verifies that a fabric config is ready for patching:
// the file exists, decodes as TOML, and carries every scalar port key.
// Nothing is mutated and kurtosis is never invoked.
func CheckFabric(fsys system.FileSystem, path string) []Check {
	doc, checks, ok := readTarget(fsys, path)
	if !ok {
		return checks
	}

	for _, fk := range fabricKeys {
		checks = append(checks, checkScalar(doc, fk.key))
	}

	return checks
}

// CheckRbuilder verifies that an rbuilder config is ready for
// patching: the file exists, decodes as TOML, and carries a
// cl_node_url field holding a well-formed http(s) URL.
func CheckRbuilder(fsys system.FileSystem, path string) []Check {
	doc, checks, ok := readTarget(fsys, path)
	if !ok {
		return checks
	}

	url, err := patch.FindURL(doc, rbuilderURLKey)
	if err != nil {
		checks = append(checks, Check{Name: rbuilderURLKey, Detail: "no quoted value found"})
		return checks
	}
	checks = append(checks, Check{Name: rbuilderURLKey, OK: true, Detail: url})

	if _, err := patch.ParseURL(url); err != nil {
		checks = append(checks, Check{Name: rbuilderURLKey + " is http(s)", Detail: "missing http:// or https:// scheme"})
	} else {
		checks = append(checks, Check{Name: rbuilderURLKey + " is http(s)", OK: true})
	}

	return checks
}

// readTarget loads the file and runs the checks shared by both
// targets. A missing or unreadable file ends the inspection early.
func readTarget(fsys system.FileSystem, path string) (string, []Check, bool) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		detail := "not found"
		if !errors.Is(err, fs.ErrNotExist) {
			detail = err.Error()
		}
		return "", []Check{{Name: "exists", Detail: detail}}, false
	}

	checks := []Check{{Name: "exists", OK: true}}

	// Read-only decode; the patches themselves never go through a
	// TOML round trip.
	var decoded map[string]any
	if err := toml.Unmarshal(data, &decoded); err != nil {
		checks = append(checks, Check{Name: "valid TOML", Detail: err.Error()})
	} else {
		checks = append(checks, Check{Name: "valid TOML", OK: true})
	}

	return string(data), checks, true
}

// checkScalar reports whether a scalar key is present, with its
// current value.
func checkScalar(doc, key string) Check {
	value, err := patch.FindScalar(doc, key)
	if err != nil {
		return Check{Name: key, Detail: "key not found"}
	}
	return Check{Name: key, OK: true, Detail: value}
}
