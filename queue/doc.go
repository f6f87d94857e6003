/*
   Copyright 2025 The ResolvQ Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package queue implements the bounded in-memory message queue the client
// uses to hand work between its internal goroutines, together with the
// SendError raised when a delivery cannot be accepted.
//
// Sends never block: a full or closed queue is reported immediately through
// a SendError, which the clienterr package wraps into its Send kind.
package queue
