// Package commands contains the operations that change jobs and companies.
// Every command is built by its NewXxxCommand constructor, which validates the
// input, and executed by the matching XxxCommandHandler.
package commands
