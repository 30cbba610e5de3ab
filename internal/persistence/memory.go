package persistence

import (
	"os"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// memoryPreferences keeps values for the lifetime of the process only,
// used when no database path is configured.
type memoryPreferences struct {
	values cmap.ConcurrentMap[string, float64]
}

func NewMemoryPreferences() Preferences {
	return &memoryPreferences{
		values: cmap.New[float64](),
	}
}

func (p *memoryPreferences) Init() error {
	return nil
}

func (p *memoryPreferences) GetFloat(key string, defaultValue float64) (float64, error) {
	value, ok := p.values.Get(key)
	if !ok {
		return defaultValue, os.ErrNotExist
	}
	return value, nil
}

func (p *memoryPreferences) SetFloat(key string, value float64) error {
	p.values.Set(key, value)
	return nil
}

func (p *memoryPreferences) Delete(key string) error {
	p.values.Remove(key)
	return nil
}

func (p *memoryPreferences) List() (map[string]float64, error) {
	return p.values.Items(), nil
}
