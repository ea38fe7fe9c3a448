package artnet

// DMXRoute est la destination physique d'un canal de la lampe :
// un univers ArtNet et un décalage dans le buffer DMX de 512 octets.
type DMXRoute struct {
	Universe int
	Offset   int
}
