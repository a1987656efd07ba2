/*
Copyright 2026 Nscale.

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

package api

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	// maxWords is the longest name or breed the service keeps.
	maxWords = 4
	// maxAge keeps echoed ages below four characters.
	maxAge = 99

	defaultName       = "unnamed"
	defaultAnimalType = "unknown"
	defaultAge        = "0"
)

func truncateWords(s string) string {
	words := strings.Fields(s)
	if len(words) > maxWords {
		words = words[:maxWords]
	}

	return strings.Join(words, " ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return s != ""
}

// NormalizeName replaces empty names and cuts names to four words.
func NormalizeName(name string) string {
	name = truncateWords(name)
	if name == "" {
		return defaultName
	}

	return name
}

// NormalizeAnimalType replaces empty or purely numeric breeds and cuts
// breeds to four words.
func NormalizeAnimalType(animalType string) string {
	animalType = truncateWords(animalType)
	if animalType == "" || isDigits(strings.ReplaceAll(animalType, " ", "")) {
		return defaultAnimalType
	}

	return animalType
}

// NormalizeAge turns anything but a non-negative integer into "0" and
// clamps large ages.
func NormalizeAge(age string) string {
	n, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil || n < 0 {
		return defaultAge
	}

	return strconv.Itoa(min(n, maxAge))
}
