// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// braind is the Brain orchestration daemon: it serves the inbound chat
// endpoint, runs the submission orchestrator, and keeps the outbound
// Gestalt channel alive.
package main

func main() {
	Execute()
}
