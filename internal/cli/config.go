package cli

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
	"github.com/matzehuels/hemicycle/pkg/render"
	"github.com/matzehuels/hemicycle/pkg/render/sink"
	"github.com/matzehuels/hemicycle/pkg/server"
)

// defaultAddr is the address "serve" listens on.
const defaultAddr = "localhost:8080"

// Config is the contents of config.toml. Flags override it.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig holds the default chamber geometry.
type LayoutConfig struct {
	Angle        float64 `toml:"angle"` // degrees
	RadiusRatio  float64 `toml:"radius_ratio"`
	RowConnected bool    `toml:"row_connected"`
}

// RenderConfig holds the default output options.
type RenderConfig struct {
	Formats   []string `toml:"formats"`
	Width     float64  `toml:"width"`
	SeatScale float64  `toml:"seat_scale"`
	Legend    bool     `toml:"legend"`
	Labels    bool     `toml:"labels"`
	Graphviz  bool     `toml:"graphviz"` // draw SVGs with neato
}

// CacheConfig selects the artifact cache.
type CacheConfig struct {
	Backend       string   `toml:"backend"` // none, file, redis or mongo
	Dir           string   `toml:"dir,omitempty"`
	TTL           duration `toml:"ttl"`
	RedisURL      string   `toml:"redis_url,omitempty"`
	MongoURI      string   `toml:"mongo_uri,omitempty"`
	MongoDatabase string   `toml:"mongo_database,omitempty"`
}

// ServerConfig configures "hemicycle serve".
type ServerConfig struct {
	Addr       string   `toml:"addr"`
	MaxSeats   int      `toml:"max_seats"`
	DiagramTTL duration `toml:"diagram_ttl"`
}

// duration is a time.Duration written as "168h0m0s" in TOML.
type duration struct {
	time.Duration
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Angle:       180,
			RadiusRatio: 1.0 / 3,
		},
		Render: RenderConfig{
			Formats:   []string{string(render.FormatSVG)},
			Width:     sink.DefaultWidth,
			SeatScale: sink.DefaultSeatScale,
			Legend:    true,
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
			TTL:     duration{pipeline.ArtifactTTL},
		},
		Server: ServerConfig{
			Addr:       defaultAddr,
			MaxSeats:   server.DefaultMaxSeats,
			DiagramTTL: duration{server.DefaultDiagramTTL},
		},
	}
}

// LoadConfig reads path on top of [DefaultConfig]. Unknown keys are
// rejected. A missing file is reported with an error satisfying
// os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Cache.Backend {
	case "", cache.BackendNone, cache.BackendFile, cache.BackendRedis, cache.BackendMongo:
	default:
		return fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
	if _, err := render.ParseFormats(strings.Join(cfg.Render.Formats, ",")); err != nil {
		return err
	}
	if cfg.Layout.Angle < 0 || cfg.Layout.Angle > 360 {
		return fmt.Errorf("layout.angle must be in (0, 360], got %g", cfg.Layout.Angle)
	}
	return nil
}

// pipelineOptions returns the layout and render defaults as pipeline
// options. Groups are left empty.
func (cfg *Config) pipelineOptions() (pipeline.Options, error) {
	formats, err := render.ParseFormats(strings.Join(cfg.Render.Formats, ","))
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Angle:        radians(cfg.Layout.Angle),
		RadiusRatio:  cfg.Layout.RadiusRatio,
		RowConnected: cfg.Layout.RowConnected,
		Formats:      formats,
		Width:        cfg.Render.Width,
		SeatScale:    cfg.Render.SeatScale,
		Legend:       cfg.Render.Legend,
		Labels:       cfg.Render.Labels,
		Graphviz:     cfg.Render.Graphviz,
	}, nil
}

// cacheOptions returns the backend options, placing the file cache in
// [cacheDir] unless a directory is configured.
func (cfg *Config) cacheOptions() cache.Options {
	opts := cache.Options{
		Backend:       cfg.Cache.Backend,
		Dir:           cfg.Cache.Dir,
		RedisURL:      cfg.Cache.RedisURL,
		MongoURI:      cfg.Cache.MongoURI,
		MongoDatabase: cfg.Cache.MongoDatabase,
	}
	if opts.Dir == "" {
		if dir, err := cacheDir(); err == nil {
			opts.Dir = dir
		}
	}
	return opts
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML.

The output is a valid config file: redirect it to the path printed by
"hemicycle config --path" to start from the current settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				path := c.configPath
				if path == "" {
					p, err := configFile()
					if err != nil {
						return fmt.Errorf("get config path: %w", err)
					}
					path = p
				}
				fmt.Fprintln(stdout, path)
				return nil
			}
			return toml.NewEncoder(stdout).Encode(c.Config)
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "print the config file path instead")

	return cmd
}
