package artnet

import "encoding/binary"

// BuildHeader construit une seule fois l'en-tête ArtDmx de 18 octets
// pour un univers donné. Le sender le met en cache au démarrage.
func BuildHeader(universe int) []byte {
	header := make([]byte, 18)
	copy(header[0:8], []byte("Art-Net\x00"))                       // Signature
	binary.LittleEndian.PutUint16(header[8:10], 0x5000)            // OpCode ArtDmx
	binary.BigEndian.PutUint16(header[10:12], 14)                  // Version du protocole
	header[12] = 0                                                 // Sequence (non utilisé)
	header[13] = 0                                                 // Physical Port (non utilisé)
	binary.LittleEndian.PutUint16(header[14:16], uint16(universe)) // Numéro d'univers
	binary.BigEndian.PutUint16(header[16:18], DMXDataSize)         // Longueur des données
	return header
}

// BuildPacket assemble un paquet ArtDmx complet à partir d'un en-tête
// déjà calculé et des 512 octets de données.
func BuildPacket(header []byte, data *[DMXDataSize]byte) []byte {
	packet := make([]byte, 18+DMXDataSize)
	copy(packet[0:18], header)
	copy(packet[18:], data[:])
	return packet
}
