/*
 * Copyright 2019 The Kythe Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package path

// Visitor performs an action on the directory at the provided path. It
// returns the names of subdirectories to visit next (relative to that
// directory), an optional function called to "close" the directory after
// all of its children have been visited, or an error to abort the walk.
type Visitor func(string) ([]string, func() error, error)

// PathVisitor is the segment-based form of Visitor.
type PathVisitor func(Path) ([]Path, func() error, error)

// Walk traverses the directory tree at root in depth-first order, calling
// visit on root and on every subdirectory it returns.
func Walk(root string, visit Visitor) error {
	return WalkPath(New(root), func(path Path) ([]Path, func() error, error) {
		children, close, err := visit(path.String())
		return ToPaths(children), close, err
	})
}

// WalkPath traverses the directory tree at root in depth-first order,
// calling visit on root and on every subdirectory it returns.
func WalkPath(root Path, visit PathVisitor) error {
	children, close, err := visit(root)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := WalkPath(root.Join(child), visit); err != nil {
			return err
		}
	}
	if close != nil {
		return close()
	}
	return nil
}
