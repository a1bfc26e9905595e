package cli

import "github.com/spf13/pflag"

// outputPathValue is a pflag.Value that coerces a raw --output argument
// into a Path and rejects an existing file during flag parsing, before
// any core logic runs.
type outputPathValue struct {
	target *Path
}

func newOutputPathValue(target *Path) *outputPathValue {
	return &outputPathValue{target: target}
}

func (v *outputPathValue) Set(raw string) error {
	path, err := NewPath(raw, PathConstraints{})
	if err != nil {
		return err
	}
	checked, err := ValidateNewOutputPath(path)
	if err != nil {
		return err
	}
	*v.target = checked
	return nil
}

func (v *outputPathValue) String() string {
	if v.target == nil {
		return ""
	}
	return v.target.String()
}

func (v *outputPathValue) Type() string {
	return "path"
}

// versionValue is a pflag.Value that rejects a malformed --version
// argument during flag parsing.
type versionValue struct {
	target *string
}

func newVersionValue(target *string) *versionValue {
	return &versionValue{target: target}
}

func (v *versionValue) Set(raw string) error {
	checked, err := ValidateVersionString(raw)
	if err != nil {
		return err
	}
	*v.target = checked
	return nil
}

func (v *versionValue) String() string {
	if v.target == nil {
		return ""
	}
	return *v.target
}

func (v *versionValue) Type() string {
	return "version"
}

var _ pflag.Value = (*outputPathValue)(nil)
var _ pflag.Value = (*versionValue)(nil)
