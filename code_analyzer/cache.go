package code_analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// DefaultCacheMaxAge is how long a cached analysis stays valid. Analyses
// are recomputed from scratch after expiry; the cache is a best-effort
// layer, not a system of record.
const DefaultCacheMaxAge = 24 * time.Hour

// analysisCacheEntry is the persisted form of one analysis run: the result
// document plus provenance metadata.
type analysisCacheEntry struct {
	ID        string                 `json:"id"`
	Source    string                 `json:"source"`
	Timestamp time.Time              `json:"timestamp"`
	Analysis  *models.AnalysisResult `json:"analysis"`
}

// CacheStats tracks cache performance counters.
type CacheStats struct {
	TotalRequests int64
	CacheHits     int64
	CacheMisses   int64
	LastResetTime time.Time
	mutex         sync.RWMutex
}

// CacheManager persists analysis results as JSON documents keyed by source
// identifier. Every operation is best-effort: a corrupt or unreadable
// entry behaves like a miss and is removed.
type CacheManager struct {
	cacheDir string
	maxAge   time.Duration
	mutex    sync.RWMutex
	stats    *CacheStats
}

// NewCacheManager creates a cache manager rooted at cacheDir. If cacheDir
// is empty it defaults to ".cache" under the current working directory.
func NewCacheManager(cacheDir string) (*CacheManager, error) {
	if cacheDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
		cacheDir = filepath.Join(cwd, ".cache")
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &CacheManager{
		cacheDir: cacheDir,
		maxAge:   DefaultCacheMaxAge,
		stats: &CacheStats{
			LastResetTime: time.Now(),
		},
	}, nil
}

// cachePath maps a source identifier to its cache file.
func (cm *CacheManager) cachePath(source string) string {
	return filepath.Join(cm.cacheDir, fmt.Sprintf("%x.json", xxh3.HashString(source)))
}

// GetAnalysisCache returns the cached result for a source identifier, or
// (nil, false) when absent, expired or unreadable.
func (cm *CacheManager) GetAnalysisCache(source string) (*models.AnalysisResult, bool) {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	cachePath := cm.cachePath(source)
	data, err := os.ReadFile(cachePath)
	if err != nil {
		cm.recordCacheMiss()
		return nil, false
	}

	var entry analysisCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		os.Remove(cachePath)
		cm.recordCacheMiss()
		return nil, false
	}

	if entry.Source != source || time.Since(entry.Timestamp) > cm.maxAge {
		os.Remove(cachePath)
		cm.recordCacheMiss()
		return nil, false
	}

	cm.recordCacheHit()
	return entry.Analysis, true
}

// SetAnalysisCache persists an analysis result with provenance metadata.
func (cm *CacheManager) SetAnalysisCache(source string, result *models.AnalysisResult) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	entry := analysisCacheEntry{
		ID:        uuid.NewString(),
		Source:    source,
		Timestamp: time.Now(),
		Analysis:  result,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := os.WriteFile(cm.cachePath(source), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

// Clear removes every cache entry.
func (cm *CacheManager) Clear() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	entries, err := os.ReadDir(cm.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(cm.cacheDir, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove cache entry %s: %w", entry.Name(), err)
		}
	}

	cm.stats.mutex.Lock()
	defer cm.stats.mutex.Unlock()
	cm.stats.TotalRequests = 0
	cm.stats.CacheHits = 0
	cm.stats.CacheMisses = 0
	cm.stats.LastResetTime = time.Now()

	return nil
}

// Stats returns cache statistics for display.
func (cm *CacheManager) Stats() map[string]interface{} {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	stats := map[string]interface{}{
		"cache_enabled": true,
		"cache_dir":     cm.cacheDir,
	}

	var files int
	var totalSize int64
	if entries, err := os.ReadDir(cm.cacheDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
				continue
			}
			files++
			if info, err := entry.Info(); err == nil {
				totalSize += info.Size()
			}
		}
	}
	stats["cache_files"] = files
	stats["total_size"] = totalSize

	cm.stats.mutex.RLock()
	defer cm.stats.mutex.RUnlock()
	stats["total_requests"] = cm.stats.TotalRequests
	stats["cache_hits"] = cm.stats.CacheHits
	stats["cache_misses"] = cm.stats.CacheMisses
	if cm.stats.TotalRequests > 0 {
		stats["hit_rate"] = float64(cm.stats.CacheHits) / float64(cm.stats.TotalRequests) * 100
	} else {
		stats["hit_rate"] = float64(0)
	}

	return stats
}

func (cm *CacheManager) recordCacheHit() {
	cm.stats.mutex.Lock()
	defer cm.stats.mutex.Unlock()
	cm.stats.TotalRequests++
	cm.stats.CacheHits++
}

func (cm *CacheManager) recordCacheMiss() {
	cm.stats.mutex.Lock()
	defer cm.stats.mutex.Unlock()
	cm.stats.TotalRequests++
	cm.stats.CacheMisses++
}
