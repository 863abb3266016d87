package utils

import (
	"os"
	"reflect"
	"strconv"
	"time"

	"bitbucket.org/mmdatafocus/console_backend/config"
)

func GetCacheLifespan() time.Duration {
	lifespan, err := strconv.Atoi(os.Getenv("CACHE_LIFESPAN_SECONDS"))
	if err != nil {
		lifespan = 60
	}
	return time.Duration(lifespan) * time.Second
}

// get type name of struct
func GetTypeName[T any]() string {
	var v T
	typeOfT := reflect.TypeOf(v)
	return typeOfT.Name()
}

/* Redis collection cache.

Keys follow "<Type>List:<entity>" so a mutation can invalidate every cached
variant of its entity with one prefix delete. The cache holds reconciled
canonical collections, never raw upstream payloads. */

func StoreCollection[T any](entity string, records []T) error {
	if !config.CollectionCacheFor(entity) {
		return nil
	}
	key := GetTypeName[T]() + "List:" + entity
	return config.SetRedisObject(key, &records, GetCacheLifespan())
}

// RetrieveCollection returns nil when the cache is disabled or cold.
func RetrieveCollection[T any](entity string) ([]T, error) {
	if !config.CollectionCacheFor(entity) {
		return nil, nil
	}
	var records []T
	key := GetTypeName[T]() + "List:" + entity
	exists, err := config.GetRedisObject(key, &records)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return records, nil
}

// InvalidateCollection drops every cached collection for the entity.
// Called after every successful mutation, before the refetch.
func InvalidateCollection[T any](entity string) error {
	return config.RemoveRedisKeysByPrefix(GetTypeName[T]() + "List:" + entity)
}
