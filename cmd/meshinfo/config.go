package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML form of the command line. Absent keys keep the
// flag defaults; flags given explicitly win over the file.
type fileConfig struct {
	Size     *int     `yaml:"size"`
	Start    *float64 `yaml:"start"`
	End      *float64 `yaml:"end"`
	Point    *float64 `yaml:"point"`
	Density  *float64 `yaml:"density"`
	Spot     *float64 `yaml:"spot"`
	Strike   *float64 `yaml:"strike"`
	Maturity *float64 `yaml:"maturity"`
	Rate     *float64 `yaml:"rate"`
	Dividend *float64 `yaml:"dividend"`
	Vol      *float64 `yaml:"vol"`
	Op       string   `yaml:"op"`
	Meshers  []string `yaml:"meshers"`
}

func loadConfig(path string) (*fileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfig loads the file at path into p and op, then parses args again
// on fs so that flags given explicitly override the file. It returns the
// mesher names: the positional arguments, or the file's list without any.
func applyConfig(fs *flag.FlagSet, args []string, path string, p *params, op *string) ([]string, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	cfg.apply(p, op)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if names := fs.Args(); len(names) > 0 {
		return names, nil
	}
	return cfg.Meshers, nil
}

func (c *fileConfig) apply(p *params, op *string) {
	if c.Size != nil {
		p.size = *c.Size
	}
	for _, f := range []struct {
		dst *float64
		src *float64
	}{
		{&p.start, c.Start},
		{&p.end, c.End},
		{&p.point, c.Point},
		{&p.density, c.Density},
		{&p.spot, c.Spot},
		{&p.strike, c.Strike},
		{&p.maturity, c.Maturity},
		{&p.rate, c.Rate},
		{&p.dividend, c.Dividend},
		{&p.vol, c.Vol},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	if c.Op != "" {
		*op = c.Op
	}
}
