package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"

	"ltg-admin/internal/logger"
	"ltg-admin/internal/model"
)

// VisitedStore persists the route-path -> visited map behind the navigation
// "new" badges. Marking is idempotent and entries never expire.
type VisitedStore interface {
	Visited(ctx context.Context, path string) (bool, error)
	MarkVisited(ctx context.Context, path string) error
	All(ctx context.Context) (map[string]bool, error)
	Clear(ctx context.Context) error
}

// FileVisitedStore keeps the map in a small JSON file, the server-side
// counterpart of the browser's localStorage entry.
type FileVisitedStore struct {
	path string
	mu   sync.Mutex
}

func NewFileVisitedStore(path string) *FileVisitedStore {
	return &FileVisitedStore{path: path}
}

func (s *FileVisitedStore) load() map[string]bool {
	m := map[string]bool{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		logger.Warn("navigation.visited file corrupt, resetting", "path", s.path, "err", err)
		return map[string]bool{}
	}
	return m
}

func (s *FileVisitedStore) save(m map[string]bool) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *FileVisitedStore) Visited(ctx context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[path], nil
}

func (s *FileVisitedStore) MarkVisited(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.load()
	if m[path] {
		return nil
	}
	m[path] = true
	return s.save(m)
}

func (s *FileVisitedStore) All(ctx context.Context) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

func (s *FileVisitedStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// RedisVisitedStore keeps the map in a redis hash, for deployments that run
// more than one API replica.
type RedisVisitedStore struct {
	client *redis.Client
	key    string
}

func NewRedisVisitedStore(client *redis.Client) *RedisVisitedStore {
	return &RedisVisitedStore{client: client, key: "ltg:visited_pages"}
}

func (s *RedisVisitedStore) Visited(ctx context.Context, path string) (bool, error) {
	v, err := s.client.HGet(ctx, s.key, path).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("visited %s: %w", path, err)
	}
	return v == "1", nil
}

func (s *RedisVisitedStore) MarkVisited(ctx context.Context, path string) error {
	if err := s.client.HSet(ctx, s.key, path, "1").Err(); err != nil {
		return fmt.Errorf("mark visited %s: %w", path, err)
	}
	return nil
}

func (s *RedisVisitedStore) All(ctx context.Context) (map[string]bool, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("visited pages: %w", err)
	}
	m := make(map[string]bool, len(raw))
	for k, v := range raw {
		m[k] = v == "1"
	}
	return m, nil
}

func (s *RedisVisitedStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// NavigationService backs the sidebar: collection counts for the badges plus
// the visited-page map that suppresses "new" once a route has been opened.
type NavigationService struct {
	visited VisitedStore
	interns *InternService
	tasks   *TaskService
	certs   *CertificateService
}

func NewNavigationService(visited VisitedStore, interns *InternService, tasks *TaskService, certs *CertificateService) *NavigationService {
	return &NavigationService{visited: visited, interns: interns, tasks: tasks, certs: certs}
}

// Counts loads the three collections in parallel. Each failed load already
// degrades to an empty list, so a dead store just shows zero badges.
func (s *NavigationService) Counts(ctx context.Context) model.NavigationCounts {
	var c model.NavigationCounts
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); c.Interns = len(s.interns.List(ctx)) }()
	go func() { defer wg.Done(); c.Tasks = len(s.tasks.List(ctx)) }()
	go func() { defer wg.Done(); c.Certificates = len(s.certs.List(ctx)) }()
	wg.Wait()
	return c
}

func (s *NavigationService) VisitedPages(ctx context.Context) map[string]bool {
	m, err := s.visited.All(ctx)
	if err != nil {
		logger.Warn("navigation.visited read failed", "err", err)
		return map[string]bool{}
	}
	return m
}

func (s *NavigationService) MarkVisited(ctx context.Context, path string) error {
	return s.visited.MarkVisited(ctx, path)
}

func (s *NavigationService) ClearVisited(ctx context.Context) error {
	return s.visited.Clear(ctx)
}
