// Package app contains the core application logic. It defines the main App
// struct, its invocation configuration, and the predict lifecycle (resolve
// settings, invoke the engine, format, print), decoupled from any specific
// entrypoint like a CLI.
package app
