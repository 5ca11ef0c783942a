package curator

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Config holds the tunables of a cure pass.
type Config struct {
	// Library is a directory whose immediate subdirectories are cure targets.
	Library string `mapstructure:"library" default:""`
	// Directories lists explicit cure targets.
	Directories []string `mapstructure:"directories" default:""`
	// ScanDirs is the ordered list of asset subdirectories inspected for present files.
	ScanDirs []string `mapstructure:"scan_dirs" default:"audios,images,videos,teacherGuideObjects,widgets"`
	// TrashPatterns are glob patterns of legacy artifacts removed before scanning.
	TrashPatterns []string `mapstructure:"trash_patterns" default:"*.swf"`
	// DocumentPattern selects the page documents directly under a target.
	DocumentPattern string `mapstructure:"document_pattern" default:"*.svg"`
	// WidgetSuffix marks packaged widgets, which own a companion thumbnail.
	WidgetSuffix string `mapstructure:"widget_suffix" default:".wgt"`
	// ThumbnailSuffix replaces WidgetSuffix to locate the companion thumbnail.
	ThumbnailSuffix string `mapstructure:"thumbnail_suffix" default:".png"`
	// DryRun reports what would be deleted without deleting anything.
	DryRun bool `mapstructure:"dry_run" default:"false"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		ScanDirs:        []string{"audios", "images", "videos", "teacherGuideObjects", "widgets"},
		TrashPatterns:   []string{"*.swf"},
		DocumentPattern: "*.svg",
		WidgetSuffix:    ".wgt",
		ThumbnailSuffix: ".png",
	}
}

// withDefaults fills every empty field from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if len(c.ScanDirs) == 0 {
		c.ScanDirs = def.ScanDirs
	}
	if len(c.TrashPatterns) == 0 {
		c.TrashPatterns = def.TrashPatterns
	}
	if c.DocumentPattern == "" {
		c.DocumentPattern = def.DocumentPattern
	}
	if c.WidgetSuffix == "" {
		c.WidgetSuffix = def.WidgetSuffix
	}
	if c.ThumbnailSuffix == "" {
		c.ThumbnailSuffix = def.ThumbnailSuffix
	}
	return c
}

// Validate checks that every glob pattern is well formed.
func (c Config) Validate() error {
	patterns := append([]string{c.DocumentPattern}, c.TrashPatterns...)
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return nil
}
