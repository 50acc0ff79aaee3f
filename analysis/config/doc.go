// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package config provides a simple way to manage the configuration of irstat.

Use [Load](filename) to load a configuration from a specific filename, or [NewDefault]() when no configuration file
is given. A missing config file is not an error for the tool: every option has a default that reproduces the plain
report.

A config file should be in yaml format. The options are nested under the top-level options key.
For example, a valid config file is as follows:

	options:
	  log-level: 4
	  color: true
	  sanitize-names: true
	  report-callgraph: true

# Logging

The [LogGroup] type provides levelled loggers. The level is set by the log-level option, from 1 (errors only) to 5
(traces). A log-level of 0 or no log-level means [InfoLevel].
*/
package config
