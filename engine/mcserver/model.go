package mcserver

// DefaultType is used when a server is added without an explicit type label.
const DefaultType = "Unknown"

// ServerConfig describes one Minecraft server entry. Entries have no stable
// id: they are addressed by their current position in the registry list.
type ServerConfig struct {
	Name string `json:"name" form:"name" validate:"required"`
	Host string `json:"host" form:"host" validate:"required"`
	Port int    `json:"port" form:"port" validate:"required,min=1,max=65535"`
	Type string `json:"type" form:"type"`
}

// DefaultServers returns the built-in server list used to seed an empty
// registry on first use. Callers receive a fresh slice on every call.
func DefaultServers() []ServerConfig {
	return []ServerConfig{
		{Name: "Hypixel", Host: "mc.hypixel.net", Port: 25565, Type: "Minecraft Java"},
		{Name: "Example Server 1", Host: "play.exampleserver.one", Port: 25565, Type: "Minecraft Java"},
		{Name: "Local Test Bedrock", Host: "127.0.0.1", Port: 19132, Type: "Minecraft Bedrock"},
		{Name: "Another Java Server", Host: "javaminecraft.example.org", Port: 25565, Type: "Minecraft Java"},
	}
}
