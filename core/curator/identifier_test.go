package curator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{"Empty", "", "", false},
		{"NoBraces", "images/photo.jpg", "", false},
		{"Simple", "images/{abc}.jpg", "{abc}", true},
		{"BareName", "{0a1b-22}.mp3", "{0a1b-22}", true},
		{"AbsolutePath", "/srv/lib/doc/videos/{v-1}.mp4", "{v-1}", true},
		{"QuerySuffix", "widgets/{w}.wgt?lang=fr", "{w}", true},
		{"EmptyPair", "images/{}.jpg", "", false},
		{"OpenOnly", "images/{abc.jpg", "", false},
		{"CloseOnly", "images/abc}.jpg", "", false},
		{"SingleChar", "{a}", "{a}", true},
		// Several independent pairs are undefined input; the rightmost opening brace wins.
		{"MultiplePairs", "dir/{a}/{b}.png", "{b}", true},
		{"NestedOpening", "a/{{x}.png", "{{x}", true},
		{"ClosingAfterLastOpen", "{a}{b}}", "{b}}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractIdentifier(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestThumbnailPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Widget", "/lib/doc/widgets/{abc}.wgt", "/lib/doc/widgets/abc.png"},
		{"NoBraces", "/lib/doc/widgets/clock.wgt", "/lib/doc/widgets/clock.png"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThumbnailPath(tt.in, ".wgt", ".png"))
		})
	}
}

func TestOrphanSet(t *testing.T) {
	tests := []struct {
		name    string
		refs    ReferenceMap
		present PresentMap
		want    []string
	}{
		{
			name:    "Disjoint",
			refs:    ReferenceMap{"{a}": "images/{a}.jpg"},
			present: PresentMap{"{b}": "/d/images/{b}.jpg"},
			want:    []string{"{a}", "{b}"},
		},
		{
			name:    "SameIDDifferentPath",
			refs:    ReferenceMap{"{a}": "videos/{a}.mp4"},
			present: PresentMap{"{a}": "/d/images/{a}.jpg"},
			want:    nil,
		},
		{
			name:    "Mixed",
			refs:    ReferenceMap{"{a}": "x", "{c}": "y"},
			present: PresentMap{"{a}": "x", "{b}": "z"},
			want:    []string{"{b}", "{c}"},
		},
		{
			name: "BothEmpty",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrphanSet(tt.refs, tt.present))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.TrashPatterns = []string{"[.swf"}
	assert.Error(t, cfg.Validate())
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{ScanDirs: []string{"images"}}.withDefaults()
	assert.Equal(t, []string{"images"}, cfg.ScanDirs)
	assert.Equal(t, []string{"*.swf"}, cfg.TrashPatterns)
	assert.Equal(t, "*.svg", cfg.DocumentPattern)
	assert.Equal(t, ".wgt", cfg.WidgetSuffix)
	assert.Equal(t, ".png", cfg.ThumbnailSuffix)
}
