package display

const bannerArt = `
    ╔══════════════════════════════════════╗
    ║          🐵 MONKEY EXPLORER 🐵         ║
    ╚══════════════════════════════════════╝

           /\_/\
          ( o.o )
           > ^ <

    Welcome to the Interactive Monkey Database!
    Discover amazing monkey species from around the world.
`

const detailsArt = `
        🐵 MONKEY DETAILS 🐵

           .-"-.
          /     \
         | () () |
          \  ^  /
           ||||||
           ||||||
`

const farewellArt = `   .-"-.
  /     \
 | ^   ^ |
  \  -  /
   ||||||
   ||||||`
