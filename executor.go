// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nodegrpc

// Executor runs background work for a client: the connect attempt, the
// connection watcher and the waiters of in-flight calls
type Executor interface {
	Go(task func())
}

// ExecutorFunc adapts a function to the Executor interface
type ExecutorFunc func(task func())

func (f ExecutorFunc) Go(task func()) {
	f(task)
}

// DefaultExecutor runs each task in its own goroutine
var DefaultExecutor Executor = ExecutorFunc(func(task func()) {
	go task()
})
