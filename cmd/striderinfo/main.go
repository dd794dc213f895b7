// Copyright 2025 strider Authors
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

// striderinfo prints the CPU capabilities strider detected and the
// dispatch level its scanning kernels will use.
package main

import (
	"flag"
	"fmt"

	"github.com/strider-go/strider/cpufeat"
	"github.com/strider-go/strider/vec"
)

var short = flag.Bool("short", false, "print only the dispatch line")

func main() {
	flag.Parse()

	level := vec.CurrentLevel()
	if level == vec.LevelScalar {
		fmt.Println("Dispatch: scalar (no vector chunks)")
	} else {
		fmt.Printf("Dispatch: %s (chunk width %d bytes)\n", level, level.Width())
	}
	if *short {
		return
	}

	fmt.Print(cpufeat.Get().Describe())
}
