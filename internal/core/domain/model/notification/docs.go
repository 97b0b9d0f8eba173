// Package notification provides domain entities for lifecycle alerts sent to
// hospital and donation-center staff.
//
// The package includes:
//   - Notification: a recipient-scoped record of a delivery lifecycle event,
//     acknowledged by the recipient through its read flag
//   - Event: a status-change record written in the same transaction as the
//     status update and drained asynchronously into notifications
//
// Key business rules:
//   - Notifications are created unread, one per resolved recipient
//   - A notification belongs to exactly one user and is never auto-deleted
//   - Events are processed at most once; processing marks them with a
//     timestamp instead of deleting them
package notification
