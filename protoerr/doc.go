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

// Package protoerr defines the error vocabulary of the client's wire-protocol
// layer: encoding, decoding and framing of messages on the wire.
//
// Like secerr, this package fixes only the error shape, not the codec
// itself. A protocol error carries its own Kind; KindTimeout is normalized
// into the canonical timeout at the clienterr conversion boundary.
package protoerr
