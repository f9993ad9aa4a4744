package jpegicc

import "os"

// ExtractProfileFile reads a JPEG file and writes its embedded ICC
// profile to iccPath.
func ExtractProfileFile(jpegPath, iccPath string) error {
	data, err := os.ReadFile(jpegPath)
	if err != nil {
		return err
	}
	profile, err := ExtractProfile(data)
	if err != nil {
		return err
	}
	return os.WriteFile(iccPath, profile, 0o644)
}

// EmbedProfileFile embeds the profile read from iccPath into the JPEG at
// jpegPath, replacing any profile already present, and writes the result
// to outPath.
func EmbedProfileFile(jpegPath, iccPath, outPath string) error {
	jpegData, err := os.ReadFile(jpegPath)
	if err != nil {
		return err
	}
	profile, err := os.ReadFile(iccPath)
	if err != nil {
		return err
	}
	out, err := ReplaceProfile(jpegData, profile)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}

// StripProfileFile removes embedded ICC segments from the JPEG at
// jpegPath and writes the result to outPath.
func StripProfileFile(jpegPath, outPath string) error {
	data, err := os.ReadFile(jpegPath)
	if err != nil {
		return err
	}
	out, _ := StripProfile(data)
	return os.WriteFile(outPath, out, 0o644)
}

// ReadFile loads a standalone profile file, byte for byte.
func (p *Profile) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	p.SetData(data)
	return nil
}

// WriteFile saves the profile bytes to path.
func (p *Profile) WriteFile(path string) error {
	return os.WriteFile(path, p.data, 0o644)
}
