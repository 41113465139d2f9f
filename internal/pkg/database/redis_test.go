package database

import (
	"context"
	"testing"
	"time"
)

func TestNewRedisWithoutURL(t *testing.T) {
	client, err := NewRedis(context.Background(), "", RedisOptions{})
	if client != nil || err != nil {
		t.Fatalf("expected nil client and nil error, got %v %v", client, err)
	}
	if err := Ping(context.Background(), nil); err != nil {
		t.Fatalf("nil client should be healthy: %v", err)
	}
	CloseRedis(nil)
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	if _, err := NewRedis(context.Background(), "http://not-redis", RedisOptions{}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPick(t *testing.T) {
	if pick(0, 20) != 20 || pick(5, 20) != 5 {
		t.Fatal("pick int")
	}
	if pick(time.Duration(0), time.Second) != time.Second {
		t.Fatal("pick duration")
	}
}
