//  Copyright (c) 2026 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"io"
	"os"

	mmap "github.com/blevesearch/mmap-go"
)

// openInput returns the contents of the file at path, memory mapped, and a
// function releasing it.  The path "-" reads all of stdin instead.
func openInput(path string, stdin io.Reader) ([]byte, func() error, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, err
		}
		return data, func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	finfo, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	// empty files cannot be mapped
	if finfo.Size() == 0 {
		return nil, f.Close, nil
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return mm, func() error {
		err := mm.Unmap()
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		return err
	}, nil
}
