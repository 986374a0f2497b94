package constant

// Watermill topic carrying queued reminder emails.
const ReminderTopicName = "SEND_REMINDER_EMAIL"
