// Package repository hosts the shared behavioral test suite that both
// storage backends must pass. The implementations live in the memory and
// firestore subpackages.
package repository
