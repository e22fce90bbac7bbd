/*
 * RePraxis
 *
 * Copyright 2024 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package rlog provides the ambient logging facility used by db.Database
and query.DBQuery. It is grounded on devt.de/krotik/ecal/util's
LogLevelLogger and its Logger interface. Packages db and query import
this package for the Logger interface and use a NullLogger unless a
Logger is supplied through their WithLogger option.
*/
package rlog

import (
	"fmt"
	"log"
	"strings"

	"github.com/krotik/common/datautil"
)

/*
Logger is the external object to which the database and query engine
release their log messages.
*/
type Logger interface {

	/*
		LogError adds a new error log message.
	*/
	LogError(v ...interface{})

	/*
		LogInfo adds a new info log message.
	*/
	LogInfo(v ...interface{})

	/*
		LogDebug adds a new debug log message.
	*/
	LogDebug(v ...interface{})
}

/*
Level represents a logging level.
*/
type Level string

/*
Available log levels.
*/
const (
	Debug Level = "debug"
	Info  Level = "info"
	Error Level = "error"
)

/*
LevelLogger wraps a Logger and filters messages below its configured
level.
*/
type LevelLogger struct {
	logger Logger
	level  Level
}

/*
NewLevelLogger wraps logger, filtering out messages below level.
*/
func NewLevelLogger(logger Logger, level string) (*LevelLogger, error) {
	llevel := Level(strings.ToLower(level))

	if llevel != Debug && llevel != Info && llevel != Error {
		return nil, fmt.Errorf("invalid log level: %v", llevel)
	}

	return &LevelLogger{logger, llevel}, nil
}

/*
Level returns the current log level.
*/
func (ll *LevelLogger) Level() Level {
	return ll.level
}

/*
LogError adds a new error log message.
*/
func (ll *LevelLogger) LogError(m ...interface{}) {
	ll.logger.LogError(m...)
}

/*
LogInfo adds a new info log message.
*/
func (ll *LevelLogger) LogInfo(m ...interface{}) {
	if ll.level == Info || ll.level == Debug {
		ll.logger.LogInfo(m...)
	}
}

/*
LogDebug adds a new debug log message.
*/
func (ll *LevelLogger) LogDebug(m ...interface{}) {
	if ll.level == Debug {
		ll.logger.LogDebug(m...)
	}
}

// Concrete sinks
// ==============

/*
MemoryLogger collects log messages in a ring buffer in memory. Useful for
embedding scenarios (a game wants to inspect recent fact-store activity)
and for tests.
*/
type MemoryLogger struct {
	*datautil.RingBuffer
}

/*
NewMemoryLogger returns a new memory logger retaining up to size messages.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

/*
LogError adds a new error log message.
*/
func (ml *MemoryLogger) LogError(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

/*
LogInfo adds a new info log message.
*/
func (ml *MemoryLogger) LogInfo(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprint(m...))
}

/*
LogDebug adds a new debug log message.
*/
func (ml *MemoryLogger) LogDebug(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}

/*
Slice returns the contents of the current log as a slice of strings.
*/
func (ml *MemoryLogger) Slice() []string {
	sl := ml.RingBuffer.Slice()
	ret := make([]string, len(sl))
	for i, lm := range sl {
		ret[i] = lm.(string)
	}
	return ret
}

/*
ConsoleLogger writes log messages via the standard library logger.
*/
type ConsoleLogger struct {
	stdlog func(v ...interface{})
}

/*
NewConsoleLogger returns a console logger instance.
*/
func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{log.Print}
}

/*
LogError adds a new error log message.
*/
func (cl *ConsoleLogger) LogError(m ...interface{}) {
	cl.stdlog(fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

/*
LogInfo adds a new info log message.
*/
func (cl *ConsoleLogger) LogInfo(m ...interface{}) {
	cl.stdlog(fmt.Sprint(m...))
}

/*
LogDebug adds a new debug log message.
*/
func (cl *ConsoleLogger) LogDebug(m ...interface{}) {
	cl.stdlog(fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}

/*
NullLogger discards every log message. It is the default logger for a
Database or DBQuery that was not given one explicitly.
*/
type NullLogger struct{}

/*
NewNullLogger returns a null logger instance.
*/
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

/*
LogError discards the message.
*/
func (nl *NullLogger) LogError(m ...interface{}) {}

/*
LogInfo discards the message.
*/
func (nl *NullLogger) LogInfo(m ...interface{}) {}

/*
LogDebug discards the message.
*/
func (nl *NullLogger) LogDebug(m ...interface{}) {}
