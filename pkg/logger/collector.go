package logger

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// CollectionConfig configures the in-memory log collector.
type CollectionConfig struct {
	MaxEntries int // max unique entries retained (oldest evicted first)
}

type AggregatedLogEntry struct {
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields"`
	Caller    string                 `json:"caller"`
	Count     int                    `json:"count"`
	FirstSeen time.Time              `json:"first_seen"`
	LastSeen  time.Time              `json:"last_seen"`
}

// LogCollector aggregates warn/error logs in memory for diagnostics.
// Identical entries (same level, message, fields, caller) are deduplicated
// with a count instead of stored repeatedly.
type LogCollector struct {
	config *CollectionConfig
	logMap map[string]*AggregatedLogEntry
	mutex  sync.RWMutex
}

func NewLogCollector(config *CollectionConfig) *LogCollector {
	if config == nil {
		config = &CollectionConfig{}
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = 200
	}

	return &LogCollector{
		config: config,
		logMap: make(map[string]*AggregatedLogEntry),
	}
}

func (d *LogCollector) AddLog(level, message string, fields map[string]interface{}, caller string) {
	now := time.Now()
	key := d.generateKey(level, message, fields, caller)

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if entry, exists := d.logMap[key]; exists {
		// Update existing entry
		entry.Count++
		entry.LastSeen = now
		return
	}

	if len(d.logMap) >= d.config.MaxEntries {
		d.evictOldest()
	}

	d.logMap[key] = &AggregatedLogEntry{
		Level:     level,
		Message:   message,
		Fields:    fields,
		Caller:    caller,
		Count:     1,
		FirstSeen: now,
		LastSeen:  now,
	}
}

// Snapshot returns the aggregated entries ordered by last occurrence (newest first).
func (d *LogCollector) Snapshot() []AggregatedLogEntry {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	logs := make([]AggregatedLogEntry, 0, len(d.logMap))
	for _, entry := range d.logMap {
		logs = append(logs, *entry)
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].LastSeen.After(logs[j].LastSeen)
	})
	return logs
}

// Reset clears all aggregated entries.
func (d *LogCollector) Reset() {
	d.mutex.Lock()
	d.logMap = make(map[string]*AggregatedLogEntry)
	d.mutex.Unlock()
}

func (d *LogCollector) generateKey(level, message string, fields map[string]interface{}, caller string) string {
	// Create a consistent hash from level + message + fields + caller
	data := struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
		Caller  string                 `json:"caller"`
	}{
		Level:   level,
		Message: message,
		Fields:  fields,
		Caller:  caller,
	}

	jsonData, _ := json.Marshal(data)
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%x", hash)
}

// caller must hold d.mutex
func (d *LogCollector) evictOldest() {
	var oldestKey string
	var oldest time.Time

	for key, entry := range d.logMap {
		if oldestKey == "" || entry.LastSeen.Before(oldest) {
			oldest = entry.LastSeen
			oldestKey = key
		}
	}
	if oldestKey != "" {
		delete(d.logMap, oldestKey)
	}
}
