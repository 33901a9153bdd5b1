package main

import (
	"code-racer/infrastructure/ws"
	"code-racer/runtime"
	"time"
)

type Config struct {
	LogLevel              string        `env:"LOG_LEVEL,required=true"`
	Host                  string        `env:"HOST"`
	HTTPPort              int           `env:"HTTP_PORT,required=true"`
	GRPCPort              int           `env:"GRPC_PORT"`
	BadgerFilepath        string        `env:"BADGER_FILEPATH,required=true"`
	RoomCapacity          int           `env:"ROOM_CAPACITY,default=4"`
	CountdownStart        int           `env:"COUNTDOWN_START,default=5"`
	CountdownInterval     time.Duration `env:"COUNTDOWN_INTERVAL,default=1s"`
	GameLoopInterval      time.Duration `env:"GAME_LOOP_INTERVAL,default=2s"`
	PersistenceTimeout    time.Duration `env:"PERSISTENCE_TIMEOUT,default=5s"`
	PersistenceBufferSize int           `env:"PERSISTENCE_BUFFER_SIZE,default=256"`
	ConnectionBufferSize  int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	RestartInterval       time.Duration `env:"RESTART_INTERVAL,default=1s"`
	StatsInterval         time.Duration `env:"STATS_INTERVAL,default=30s"`
	QueueAlertThreshold   float64       `env:"QUEUE_ALERT_THRESHOLD,default=0.8"`
	QueueMonitorInterval  time.Duration `env:"QUEUE_MONITOR_INTERVAL,default=5s"`
	WriteWait             time.Duration `env:"WRITE_WAIT,default=10s"`
	PongWait              time.Duration `env:"PONG_WAIT,default=60s"`
	MaxMessageSize        int64         `env:"MAX_MESSAGE_SIZE,default=4096"`
}

func (c Config) Runtime() runtime.Config {
	return runtime.Config{
		Capacity:              c.RoomCapacity,
		CountdownStart:        c.CountdownStart,
		CountdownInterval:     c.CountdownInterval,
		GameLoopInterval:      c.GameLoopInterval,
		PersistenceTimeout:    c.PersistenceTimeout,
		PersistenceBufferSize: c.PersistenceBufferSize,
		StatsInterval:         c.StatsInterval,
		RestartInterval:       c.RestartInterval,
	}
}

func (c Config) Transport() ws.Options {
	return ws.Options{
		BufferSize:     c.ConnectionBufferSize,
		WriteWait:      c.WriteWait,
		PongWait:       c.PongWait,
		MaxMessageSize: c.MaxMessageSize,
	}
}
