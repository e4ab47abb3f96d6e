package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence is the contract for user state that survives runs.
type Persistence interface {
	TextSize() (float64, bool)
	SetTextSize(size float64) error

	SampleNames() []string
	Sample(name string) (string, error)
	SaveSample(name, text string) error
}

const (
	prefTextSizeKey = "prefs/textsize"
	samplePrefix    = "samples/"
)

// Load creates a Persistence backed by diskv using the provided
// config, loading it when cfg is nil. Default sample lists are seeded
// on first use.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	p := &persistence{d: diskv.New(diskv.Options{
		BasePath:          cfg.BasePath(),
		AdvancedTransform: keyToPath,
		InverseTransform:  pathToKey,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}
	p.seedSamples()
	return p, nil
}

type persistence struct {
	d *diskv.Diskv
}

// Keys look like "prefs/textsize" and "samples/groceries"; on disk
// the segment before the slash becomes a directory.
func keyToPath(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKey(pk *diskv.PathKey) string {
	return strings.Join(append(append([]string{}, pk.Path...), pk.FileName), "/")
}

func (p *persistence) TextSize() (float64, bool) {
	data, err := p.d.Read(prefTextSizeKey)
	if err != nil {
		return 0, false
	}
	size, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || size <= 0 {
		return 0, false
	}
	return size, true
}

func (p *persistence) SetTextSize(size float64) error {
	if size <= 0 {
		return fmt.Errorf("store: text size must be positive, got %v", size)
	}
	if err := p.d.Write(prefTextSizeKey, []byte(strconv.FormatFloat(size, 'f', -1, 64))); err != nil {
		return fmt.Errorf("store: write text size: %w", err)
	}
	return nil
}

func (p *persistence) SampleNames() []string {
	names := make([]string, 0, 4)
	for key := range p.d.Keys(nil) {
		if strings.HasPrefix(key, samplePrefix) {
			names = append(names, strings.TrimPrefix(key, samplePrefix))
		}
	}
	sort.Strings(names)
	return names
}

func (p *persistence) Sample(name string) (string, error) {
	data, err := p.d.Read(samplePrefix + name)
	if err != nil {
		return "", fmt.Errorf("store: no sample %q: %w", name, err)
	}
	return string(data), nil
}

func (p *persistence) SaveSample(name, text string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("store: sample name required")
	}
	if err := p.d.Write(samplePrefix+name, []byte(text)); err != nil {
		return fmt.Errorf("store: save sample %q: %w", name, err)
	}
	return nil
}

// seedSamples installs the shipped demo lists without overwriting
// user edits.
func (p *persistence) seedSamples() {
	for name, text := range defaultSamples {
		key := samplePrefix + name
		if p.d.Has(key) {
			continue
		}
		_ = p.d.Write(key, []byte(text))
	}
}

var defaultSamples = map[string]string{
	"groceries": `# Groceries
## Produce
- [ ] Apples
- [ ] Bananas
- [ ] 2 bell peppers
- [ ] Spring mix
## Dairy
- [ ] Milk
- [ ] Greek yogurt
- [ ] Cheddar
## Pantry
- [ ] Pasta
- [ ] Olive oil
- [ ] Bread
`,
	"camping": `# Camping Trip
## Shelter
- [ ] Tent
- [ ] Sleeping bags
- [ ] Ground pad
## Kitchen
- [ ] Stove
- [ ] Fuel
- [ ] Cooler
- [ ] Water jug
## Misc
- [ ] Lantern
- [ ] First aid kit
- [ ] Bug spray
`,
}
