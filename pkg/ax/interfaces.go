package ax

//go:generate mockgen -source=ax.go -destination=mocks/mock_ax.go -package=mock_ax
