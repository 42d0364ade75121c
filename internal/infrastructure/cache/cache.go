// Package cache keeps JSON responses on disk for a limited time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type CachedResponse struct {
	Hash      string          `json:"hash"`
	Response  json.RawMessage `json:"response"`
	CreatedAt time.Time       `json:"created_at"`
}

type Cache struct {
	cacheDir string
	ttl      time.Duration
	now      func() time.Time
}

// NewCache creates dir if needed and drops entries older than ttl.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creando directorio de caché: %w", err)
	}

	cache := &Cache{
		cacheDir: dir,
		ttl:      ttl,
		now:      time.Now,
	}

	_ = cache.CleanExpired()

	return cache, nil
}

// GenerateHash genera un hash SHA256 del contenido
func (c *Cache) GenerateHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// Get decodes the entry stored under hash into v. It reports false when there is
// no entry or it has expired.
func (c *Cache) Get(hash string, v interface{}) (bool, error) {
	filePath := filepath.Join(c.cacheDir, hash+".json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("error leyendo caché: %w", err)
	}

	var cached CachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return false, fmt.Errorf("error deserializando caché: %w", err)
	}

	if c.now().Sub(cached.CreatedAt) > c.ttl {
		_ = os.Remove(filePath)
		return false, nil
	}

	if err := json.Unmarshal(cached.Response, v); err != nil {
		return false, fmt.Errorf("error deserializando respuesta: %w", err)
	}
	return true, nil
}

// Set guarda una respuesta en el caché
func (c *Cache) Set(hash string, response interface{}) error {
	responseData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error serializando respuesta: %w", err)
	}

	cached := CachedResponse{
		Hash:      hash,
		Response:  responseData,
		CreatedAt: c.now(),
	}

	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializando caché: %w", err)
	}

	filePath := filepath.Join(c.cacheDir, hash+".json")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error guardando caché: %w", err)
	}

	return nil
}

// CleanExpired elimina archivos de caché expirados
func (c *Cache) CleanExpired() error {
	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return fmt.Errorf("error leyendo directorio de caché: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if c.now().Sub(info.ModTime()) > c.ttl {
			_ = os.Remove(filepath.Join(c.cacheDir, entry.Name()))
		}
	}

	return nil
}

// Delete removes the entry stored under hash. A missing entry is not an error.
func (c *Cache) Delete(hash string) error {
	err := os.Remove(filepath.Join(c.cacheDir, hash+".json"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error eliminando caché: %w", err)
	}
	return nil
}
