package uploads

import (
	"strings"
	"testing"
)

func TestValidateFilename(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"jpg", "photo.jpg", false},
		{"jpeg", "photo.jpeg", false},
		{"png", "scan.png", false},
		{"pdf", "receipt.pdf", false},
		{"uppercase extension", "PHOTO.JPG", false},
		{"empty", "", true},
		{"no extension", "photo", true},
		{"executable", "malware.exe", true},
		{"script", "notes.txt", true},
		{"too long", strings.Repeat("a", MaxFilenameLength) + ".jpg", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFilename(tc.filename)
			if tc.wantErr && err == nil {
				t.Fatalf("%q: expected error", tc.filename)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("%q: %v", tc.filename, err)
			}
		})
	}
}

func TestObjectURL(t *testing.T) {
	url := ObjectURL("https://files.example.com/", "My Photo.JPG")

	if !strings.HasPrefix(url, "https://files.example.com/") {
		t.Fatalf("unexpected prefix: %s", url)
	}
	if strings.Contains(url, "My Photo") {
		t.Fatalf("original filename leaked into the URL: %s", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("extension not normalized: %s", url)
	}
	if strings.Contains(url, "//My") || strings.Contains(strings.TrimPrefix(url, "https://"), "//") {
		t.Fatalf("double slash in URL: %s", url)
	}

	if url == ObjectURL("https://files.example.com/", "My Photo.JPG") {
		t.Fatalf("object names must be unique per upload")
	}
}
