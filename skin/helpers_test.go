package skin

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"go.uber.org/zap/zaptest"

	"osr/config"
	"osr/transform"
)

const testSkin = "test"

func testConfig() *config.SkinConfig {
	return &config.SkinConfig{
		SourcePrefix: "src",
		Script:       "skin.txt",
		Ini:          "skin.ini",
		Height:       480,
		Base: []string{
			"JudgementLine: 0",
			"SpecialStyle: 0",
			"ColourBarline: 0,0,0,0",
			"ColumnLineWidth: 0,0,0,0,0,0,0,0,0,0,0,0",
		},
	}
}

// makeSource creates skin source directory with given files. Files with
// image extensions get real images, everything else gets text.
func makeSource(t *testing.T, root string, files ...string) string {
	t.Helper()

	dir := SourceDir(root, "src", testSkin)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("unable to create source directory: %v", err)
	}
	for _, name := range files {
		path := filepath.Join(dir, name)
		switch filepath.Ext(name) {
		case ".png", ".jpg":
			if err := imaging.Save(imaging.New(20, 10, color.NRGBA{R: 255, A: 255}), path); err != nil {
				t.Fatalf("unable to create image %s: %v", name, err)
			}
		default:
			if err := os.WriteFile(path, []byte("text"), 0644); err != nil {
				t.Fatalf("unable to create file %s: %v", name, err)
			}
		}
	}
	return dir
}

func newTestSkin(t *testing.T, root string, tr transform.Service) *Skin {
	t.Helper()
	return New(testSkin, root, testConfig(), nil, tr, zaptest.NewLogger(t))
}
