// Package services carries the business logic behind the driving ports,
// orchestrating calls out through the driven ports.
//
// Six services cooperate here: NotificationService owns the transient
// message queue, RegistryService mirrors the remote file list,
// UploadService stages and sends documents, ChatService runs the
// question/answer session, SettingsService loads and persists the config
// file, and StatusService probes service health. Each holds references
// only to the collaborators it needs.
package services
