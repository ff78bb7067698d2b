package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key for a user's login session.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("login:%d", userID)
}

// SubmissionFeedChannel returns the Redis PubSub channel carrying the
// live submission feed consumed by the instructor monitor.
func (r *CacheKeyStruct) SubmissionFeedChannel() string {
	return "submissions:feed"
}

var CacheKey = NewCacheKeyStruct()
