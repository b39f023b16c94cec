package port

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type MetricsPort interface {
	PurchaseRecorded(result string)
	LoyaltyPointsAwarded(points int64)
	LoginRecorded(success bool)
	SignupRecorded()
}
