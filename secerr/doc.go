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

// Package secerr defines the error vocabulary of the client's security and
// validation layer.
//
// The layer itself (signature verification, key handling, record validation)
// lives elsewhere; this package only fixes the shape of the errors it raises
// so that the rest of the client can classify them. In particular, a
// security error carries its own Kind, and KindTimeout is the signal that
// the boundary conversion in the clienterr package re-tags as the canonical
// timeout before the error reaches callers.
package secerr
