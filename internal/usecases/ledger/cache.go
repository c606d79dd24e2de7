package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache memoriza o último livro construído, identificado pela impressão digital do conjunto bruto.
// O mesmo conjunto de registros sempre devolve o mesmo livro; não há expiração por tempo.
type Cache struct {
	mu      sync.Mutex
	minYear int
	current *domain.Ledger
	hits    int
	builds  int
}

func NewCache(minYear int) *Cache {
	return &Cache{minYear: minYear}
}

// Get devolve o livro do conjunto informado, reconstruindo apenas quando a impressão digital muda
func (c *Cache) Get(raws []domain.RawBooking) (*domain.Ledger, error) {
	fingerprint, err := Fingerprint(raws)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil && c.current.Fingerprint == fingerprint {
		c.hits++
		return c.current, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate ledger id")
	}

	built := Build(raws, c.minYear)
	built.ID = id
	built.Fingerprint = fingerprint

	c.current = built
	c.builds++

	return built, nil
}

// Invalidate descarta o livro memorizado; a próxima chamada reconstrói
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

// Stats retorna quantas chamadas foram atendidas da memória e quantas reconstruíram
func (c *Cache) Stats() (hits, builds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.builds
}

// Fingerprint calcula o sha256 do JSON canônico dos registros, independente da ordem recebida
func Fingerprint(raws []domain.RawBooking) (string, error) {
	encoded := make([]string, 0, len(raws))
	for _, raw := range raws {
		data, err := json.Marshal(raw)
		if err != nil {
			return "", errors.Wrap(err, "failed to encode raw booking")
		}
		encoded = append(encoded, string(data))
	}
	sort.Strings(encoded)

	hash := sha256.New()
	for _, item := range encoded {
		hash.Write([]byte(item))
		hash.Write([]byte{'\n'})
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
