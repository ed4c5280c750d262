package lookup

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Резолвер названий справочников. Сообщения и документы никогда не должны
// показывать голые числовые ID, поэтому перед их составлением все ID видов
// и программ обучения разворачиваются в названия. Отдельные ID — штучно,
// набор строк заявки — одним батч-запросом на справочник.

// NotFoundError — справочник не содержит записи с указанным ID.
type NotFoundError struct {
	Kind string // "training_type" или "training_program"
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lookup: %s с id=%d не найден", e.Kind, e.ID)
}

// Directory — батч-доступ к справочникам (реализуется репозиторием).
type Directory interface {
	GetTypeNamesByIDs(ids []uint) (map[uint]string, error)
	GetProgramNamesByIDs(ids []uint) (map[uint]string, error)
}

// Cache — необязательный кэш поверх справочников (реализуется Redis-клиентом).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

const cacheTTL = 24 * time.Hour

type Resolver struct {
	dir   Directory
	cache Cache // может быть nil
}

func New(dir Directory, cache Cache) *Resolver {
	return &Resolver{dir: dir, cache: cache}
}

// Names — разрешённые названия по обоим справочникам.
type Names struct {
	Types    map[uint]string
	Programs map[uint]string
}

// ResolveNames разворачивает все переданные ID в названия. Каждый справочник
// опрашивается не более одного раза; ID, которых нет в справочнике, дают
// NotFoundError.
func (r *Resolver) ResolveNames(ctx context.Context, typeIDs, programIDs []uint) (*Names, error) {
	types, err := r.resolveBatch(ctx, "training_type", typeIDs, r.dir.GetTypeNamesByIDs)
	if err != nil {
		return nil, err
	}
	programs, err := r.resolveBatch(ctx, "training_program", programIDs, r.dir.GetProgramNamesByIDs)
	if err != nil {
		return nil, err
	}
	return &Names{Types: types, Programs: programs}, nil
}

// ResolveTypeName возвращает название вида обучения.
func (r *Resolver) ResolveTypeName(ctx context.Context, id uint) (string, error) {
	names, err := r.resolveBatch(ctx, "training_type", []uint{id}, r.dir.GetTypeNamesByIDs)
	if err != nil {
		return "", err
	}
	return names[id], nil
}

// ResolveProgramName возвращает название программы обучения.
func (r *Resolver) ResolveProgramName(ctx context.Context, id uint) (string, error) {
	names, err := r.resolveBatch(ctx, "training_program", []uint{id}, r.dir.GetProgramNamesByIDs)
	if err != nil {
		return "", err
	}
	return names[id], nil
}

func (r *Resolver) resolveBatch(ctx context.Context, kind string, ids []uint,
	load func([]uint) (map[uint]string, error)) (map[uint]string, error) {

	names := make(map[uint]string, len(ids))
	var missing []uint

	for _, id := range uniqueIDs(ids) {
		if r.cache != nil {
			if name, ok := r.cache.Get(ctx, cacheKey(kind, id)); ok {
				names[id] = name
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return names, nil
	}

	loaded, err := load(missing)
	if err != nil {
		return nil, err
	}

	for _, id := range missing {
		name, ok := loaded[id]
		if !ok {
			return nil, &NotFoundError{Kind: kind, ID: id}
		}
		names[id] = name
		if r.cache != nil {
			r.cache.Set(ctx, cacheKey(kind, id), name, cacheTTL)
		}
	}

	return names, nil
}

func cacheKey(kind string, id uint) string {
	return "lookup:" + kind + ":" + strconv.FormatUint(uint64(id), 10)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}
