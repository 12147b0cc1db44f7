package dragdrop

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Timing holds the engine's fixed delays.
type Timing struct {
	// StartAnnouncement is how long the drag-start announcement stays in the
	// live region.
	StartAnnouncement time.Duration `mapstructure:"start_announcement"`
	// EndAnnouncement is how long the drop announcement stays. It is shorter
	// than ResetDelay so the announcement is gone before the state resets.
	EndAnnouncement time.Duration `mapstructure:"end_announcement"`
	// CancelAnnouncement is how long the cancel announcement stays.
	CancelAnnouncement time.Duration `mapstructure:"cancel_announcement"`
	// ResetDelay is the grace period between END_DRAG and the return to the
	// idle shape.
	ResetDelay time.Duration `mapstructure:"reset_delay"`
}

// Messages holds the announcement texts. Started is a format string taking
// the dragged item's type.
type Messages struct {
	Started   string `mapstructure:"started"`
	Reordered string `mapstructure:"reordered"`
	Moved     string `mapstructure:"moved"`
	Returned  string `mapstructure:"returned"`
	Cancelled string `mapstructure:"cancelled"`
}

// Config configures an Engine. The zero value is usable; unset fields take
// the values from DefaultConfig.
type Config struct {
	Timing   Timing   `mapstructure:"timing"`
	Messages Messages `mapstructure:"messages"`

	// Input receives the engine's global listeners while dragging. Nil means
	// the engine is driven only through explicit calls.
	Input InputSource `mapstructure:"-"`
	// Document receives the cursor and marker affordances.
	Document Document `mapstructure:"-"`
	// LiveRegion receives accessibility announcements. Nil uses a
	// MemoryLiveRegion.
	LiveRegion LiveRegion `mapstructure:"-"`
	// Store receives drag lifecycle events, e.g. ecs.NewDonburiStore.
	Store EventStore `mapstructure:"-"`
	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger `mapstructure:"-"`
}

// DefaultConfig returns the default timings and English messages.
func DefaultConfig() Config {
	return Config{
		Timing: Timing{
			StartAnnouncement:  1000 * time.Millisecond,
			EndAnnouncement:    100 * time.Millisecond,
			CancelAnnouncement: 1000 * time.Millisecond,
			ResetDelay:         150 * time.Millisecond,
		},
		Messages: Messages{
			Started:   "Started dragging %s",
			Reordered: "Item reordered within the same container",
			Moved:     "Item moved to new container",
			Returned:  "Item returned to its original position",
			Cancelled: "Drag cancelled",
		},
	}
}

// withDefaults fills every unset field from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Timing.StartAnnouncement <= 0 {
		c.Timing.StartAnnouncement = def.Timing.StartAnnouncement
	}
	if c.Timing.EndAnnouncement <= 0 {
		c.Timing.EndAnnouncement = def.Timing.EndAnnouncement
	}
	if c.Timing.CancelAnnouncement <= 0 {
		c.Timing.CancelAnnouncement = def.Timing.CancelAnnouncement
	}
	if c.Timing.ResetDelay <= 0 {
		c.Timing.ResetDelay = def.Timing.ResetDelay
	}
	if c.Messages.Started == "" {
		c.Messages.Started = def.Messages.Started
	}
	if c.Messages.Reordered == "" {
		c.Messages.Reordered = def.Messages.Reordered
	}
	if c.Messages.Moved == "" {
		c.Messages.Moved = def.Messages.Moved
	}
	if c.Messages.Returned == "" {
		c.Messages.Returned = def.Messages.Returned
	}
	if c.Messages.Cancelled == "" {
		c.Messages.Cancelled = def.Messages.Cancelled
	}
	if c.Document == nil {
		c.Document = nopDocument{}
	}
	if c.LiveRegion == nil {
		c.LiveRegion = NewMemoryLiveRegion()
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger().WithField("component", "dragdrop")
	}
	return c
}

// LoadConfig reads timings and messages from the file at path (any format
// viper understands, chosen by extension) with DRAGDROP_ environment
// overrides, e.g. DRAGDROP_TIMING_RESET_DELAY=200ms. An empty path reads only
// defaults and the environment.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("timing.start_announcement", def.Timing.StartAnnouncement)
	v.SetDefault("timing.end_announcement", def.Timing.EndAnnouncement)
	v.SetDefault("timing.cancel_announcement", def.Timing.CancelAnnouncement)
	v.SetDefault("timing.reset_delay", def.Timing.ResetDelay)
	v.SetDefault("messages.started", def.Messages.Started)
	v.SetDefault("messages.reordered", def.Messages.Reordered)
	v.SetDefault("messages.moved", def.Messages.Moved)
	v.SetDefault("messages.returned", def.Messages.Returned)
	v.SetDefault("messages.cancelled", def.Messages.Cancelled)

	v.SetEnvPrefix("DRAGDROP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
