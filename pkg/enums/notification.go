package enums

// NotificationKind classifies feed entries shown on the dashboard.
type NotificationKind string

const (
	NotificationKindSale   NotificationKind = "sale"
	NotificationKindStock  NotificationKind = "stock"
	NotificationKindSystem NotificationKind = "system"
)

// String implements fmt.Stringer.
func (n NotificationKind) String() string {
	return string(n)
}
