// Package email_tools provides MCP tools for managing email accounts and
// forwarders through the cPanel UAPI Email module.
//
// Mutating tools (add_email_account, delete_email_account, change_password,
// update_quota, create_email_forwarder, delete_email_forwarder) are gated by
// read-only mode: they are always registered but refuse to run unless the
// server was started with --yolo. Listing and settings tools are always
// available.
package email_tools
