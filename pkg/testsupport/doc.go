// Package testsupport holds helpers shared by package tests: silent
// controllers positioned on a question and golden file handling.
package testsupport
